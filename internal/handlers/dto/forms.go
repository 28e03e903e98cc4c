package dto

// Form payloads, one per POST surface. Each enumerates exactly the fields it
// accepts; validation runs through the binding tags.

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type RegisterForm struct {
	Name     string `form:"name" binding:"required"`
	Username string `form:"username" binding:"required,min=3,max=50"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

type RoomForm struct {
	Topic       string `form:"topic" binding:"required"`
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

type MessageForm struct {
	Body string `form:"body" binding:"required"`
}

type UserForm struct {
	Name      string `form:"name" binding:"required"`
	Username  string `form:"username" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Bio       string `form:"bio"`
	AvatarURL string `form:"avatar_url"`
}
