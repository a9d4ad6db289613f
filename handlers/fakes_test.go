package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"chirp/apperror"
	"chirp/models"
	"chirp/store"
)

// In-memory store implementations mirroring the MongoDB semantics, so the
// handler tests can exercise the full HTTP surface without a database.

type fakeUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[primitive.ObjectID]models.User)}
}

func (f *fakeUsers) Register(_ context.Context, username, email, password string) (primitive.ObjectID, error) {
	if err := store.ValidateRegistration(username, email, password); err != nil {
		return primitive.NilObjectID, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return primitive.NilObjectID, apperror.NewValidation("The username is already taken")
		}
	}

	// MinCost keeps the tests fast; production uses DefaultCost.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return primitive.NilObjectID, err
	}
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		PwHash:   string(hash),
	}
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUsers) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			if bcrypt.CompareHashAndPassword([]byte(u.PwHash), []byte(password)) != nil {
				return nil, apperror.NewAuth("Invalid password")
			}
			user := u
			return &user, nil
		}
	}
	return nil, apperror.NewAuth("Invalid username")
}

func (f *fakeUsers) ByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		user := u
		return &user, nil
	}
	return nil, apperror.NewNotFound("user not found")
}

func (f *fakeUsers) ByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

func (f *fakeUsers) idOf(username string) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u.ID
		}
	}
	return primitive.NilObjectID
}

type fakeFollows struct {
	mu    sync.Mutex
	edges map[primitive.ObjectID]map[primitive.ObjectID]bool
}

func newFakeFollows() *fakeFollows {
	return &fakeFollows{edges: make(map[primitive.ObjectID]map[primitive.ObjectID]bool)}
}

func (f *fakeFollows) Follow(_ context.Context, who, whom primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.edges[who] == nil {
		f.edges[who] = make(map[primitive.ObjectID]bool)
	}
	f.edges[who][whom] = true
	return nil
}

func (f *fakeFollows) Unfollow(_ context.Context, who, whom primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.edges[who], whom)
	return nil
}

func (f *fakeFollows) IsFollowing(_ context.Context, who, whom primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[who][whom], nil
}

func (f *fakeFollows) FollowedIDs(_ context.Context, who primitive.ObjectID) ([]primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []primitive.ObjectID
	for id := range f.edges[who] {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeMessages struct {
	mu   sync.Mutex
	msgs []models.Message
	seq  int
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{}
}

func (f *fakeMessages) Post(_ context.Context, author *models.User, text string) (primitive.ObjectID, error) {
	if err := store.ValidateMessageText(text); err != nil {
		return primitive.NilObjectID, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	msg := models.Message{
		ID:       primitive.NewObjectID(),
		AuthorID: author.ID,
		Username: author.Username,
		Email:    author.Email,
		Text:     text,
		// Spread timestamps so ordering is never ambiguous.
		PubDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Second),
	}
	f.msgs = append(f.msgs, msg)
	return msg.ID, nil
}

func (f *fakeMessages) ByAuthor(ctx context.Context, author primitive.ObjectID) ([]models.Message, error) {
	return f.ByAuthors(ctx, []primitive.ObjectID{author})
}

func (f *fakeMessages) ByAuthors(_ context.Context, authors []primitive.ObjectID) ([]models.Message, error) {
	want := make(map[primitive.ObjectID]bool, len(authors))
	for _, id := range authors {
		want[id] = true
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Message
	for _, m := range f.msgs {
		if want[m.AuthorID] {
			out = append(out, m)
		}
	}
	sortDesc(out)
	return out, nil
}

func (f *fakeMessages) All(_ context.Context) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]models.Message(nil), f.msgs...)
	sortDesc(out)
	return out, nil
}

func (f *fakeMessages) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

func sortDesc(msgs []models.Message) {
	sort.Slice(msgs, func(i, j int) bool {
		return msgs[i].PubDate.After(msgs[j].PubDate)
	})
}
