package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/example/studybud/internal/models"
)

func TestDeleteMessageNonAuthorDenied(t *testing.T) {
	r, db, sessions := setupTestApp(t)
	host := registerUser(t, db, "host", "host@example.com", "password1")
	author := registerUser(t, db, "author", "author@example.com", "password2")
	room := createRoom(t, db, host, "go", "Room", "")

	message := &models.Message{
		RoomID:    room.ID,
		UserID:    author.ID,
		Body:      "mine",
		CreatedAt: time.Now(),
	}
	if err := db.SaveMessage(message); err != nil {
		t.Fatalf("SaveMessage() error = %v", err)
	}

	// The room host is not the author and may not delete it.
	w := doPost(r, "/delete-message/"+message.ID.String(), nil, sessionCookie(t, sessions, host))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a non-author, got %d", w.Code)
	}

	if _, err := db.GetMessage(message.ID.String()); err != nil {
		t.Errorf("expected the message to survive: %v", err)
	}
}

func TestDeleteMessageByAuthor(t *testing.T) {
	r, db, sessions := setupTestApp(t)
	author := registerUser(t, db, "author", "author@example.com", "password1")
	room := createRoom(t, db, author, "go", "Room", "")

	message := &models.Message{
		RoomID:    room.ID,
		UserID:    author.ID,
		Body:      "regret this",
		CreatedAt: time.Now(),
	}
	if err := db.SaveMessage(message); err != nil {
		t.Fatalf("SaveMessage() error = %v", err)
	}

	cookie := sessionCookie(t, sessions, author)

	w := doGet(r, "/delete-message/"+message.ID.String(), cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected the confirmation page, got %d", w.Code)
	}

	w = doPost(r, "/delete-message/"+message.ID.String(), nil, cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("expected a redirect home, got %d", w.Code)
	}

	if _, err := db.GetMessage(message.ID.String()); err == nil {
		t.Error("expected the message to be deleted")
	}
}
