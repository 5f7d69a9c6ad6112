package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"habit-tracker-go/internal/domain/apperror"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users     map[string]User
	templates map[string][]int

	failTemplates error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[string]User),
		templates: make(map[string][]int),
	}
}

func (r *fakeUserRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	users := make(map[string]User, len(r.users))
	for id, u := range r.users {
		users[id] = u
	}
	templates := make(map[string][]int, len(r.templates))
	for id, days := range r.templates {
		templates[id] = days
	}

	if err := fn(r); err != nil {
		r.users = users
		r.templates = templates
		return err
	}
	return nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return ErrUsernameTaken
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) CreateWeekTemplates(ctx context.Context, userID string) error {
	if r.failTemplates != nil {
		return r.failTemplates
	}
	for weekday := 0; weekday <= 6; weekday++ {
		r.templates[userID] = append(r.templates[userID], weekday)
	}
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func TestSignUpCreatesSevenTemplates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, bcrypt.MinCost)

	created, err := svc.SignUp(context.Background(), "  alice ", "s3cret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Username != "alice" {
		t.Fatalf("expected trimmed username, got %q", created.Username)
	}
	if created.PasswordHash == "s3cret" {
		t.Fatalf("expected hashed password")
	}

	days := repo.templates[created.ID]
	if len(days) != 7 {
		t.Fatalf("expected 7 templates, got %v", days)
	}
	for i, weekday := range days {
		if weekday != i {
			t.Fatalf("expected weekdays 0..6, got %v", days)
		}
	}
}

func TestSignUpRollsBackWhenTemplatesFail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failTemplates = errors.New("insert failed")
	svc := NewService(repo, bcrypt.MinCost)

	if _, err := svc.SignUp(context.Background(), "alice", "s3cret"); err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no user left behind, got %d", len(repo.users))
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := NewService(newFakeUserRepo(), bcrypt.MinCost)

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{name: "blank username", username: "  ", password: "pw", want: ErrUsernameRequired},
		{name: "empty password", username: "bob", password: "", want: ErrPasswordRequired},
		{name: "long password", username: "bob", password: strings.Repeat("x", 73), want: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.username, tt.password)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("expected validation kind")
			}
		})
	}
}

func TestSignUpDuplicateUsername(t *testing.T) {
	svc := NewService(newFakeUserRepo(), bcrypt.MinCost)
	_, _ = svc.SignUp(context.Background(), "alice", "one")

	_, err := svc.SignUp(context.Background(), "alice", "two")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict kind")
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newFakeUserRepo(), bcrypt.MinCost)
	created, _ := svc.SignUp(context.Background(), "alice", "s3cret")

	found, err := svc.Authenticate(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, found.ID)
	}

	for _, creds := range [][2]string{{"alice", "wrong"}, {"nobody", "s3cret"}, {"", ""}} {
		_, err := svc.Authenticate(context.Background(), creds[0], creds[1])
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%v: expected ErrInvalidCredentials, got %v", creds, err)
		}
		if !errors.Is(err, apperror.ErrUnauthenticated) {
			t.Fatalf("%v: expected unauthenticated kind", creds)
		}
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeUserRepo(), bcrypt.MinCost)
	created, _ := svc.SignUp(context.Background(), "alice", "s3cret")

	found, err := svc.GetByID(context.Background(), created.ID)
	if err != nil || found.Username != "alice" {
		t.Fatalf("expected alice, got %v, %v", found, err)
	}

	for _, id := range []string{"not-a-uuid", "00000000-0000-4000-8000-0000000000ff"} {
		if _, err := svc.GetByID(context.Background(), id); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("%s: expected ErrUserNotFound, got %v", id, err)
		}
	}
}
