package service

import (
	"context"

	"github.com/devconnect/devconnect-go/internal/model"
	"github.com/devconnect/devconnect-go/internal/repository"
)

// In-memory store implementations so service rules can be tested without a
// database. They return the repository sentinel errors the services map.

type fakeUserStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			stored := *u
			return &stored, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	stored := *u
	return &stored, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeProfileStore struct {
	byUser      map[int64]*model.Profile
	nextID      int64
	nextEntryID int64
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{byUser: make(map[int64]*model.Profile)}
}

func (f *fakeProfileStore) Upsert(_ context.Context, p *model.Profile) error {
	if existing, ok := f.byUser[p.UserID]; ok {
		// Replace every updatable field, keep identity and collections.
		p.ID = existing.ID
		p.Experience = existing.Experience
		p.Education = existing.Education
	} else {
		f.nextID++
		p.ID = f.nextID
	}
	stored := *p
	f.byUser[p.UserID] = &stored
	return nil
}

func (f *fakeProfileStore) GetByUserID(_ context.Context, userID int64) (*model.Profile, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return copyProfile(p), nil
}

func (f *fakeProfileStore) List(_ context.Context) ([]model.Profile, error) {
	out := make([]model.Profile, 0, len(f.byUser))
	for _, p := range f.byUser {
		out = append(out, *copyProfile(p))
	}
	return out, nil
}

func (f *fakeProfileStore) DeleteByUserID(_ context.Context, userID int64) error {
	delete(f.byUser, userID)
	return nil
}

func (f *fakeProfileStore) AddExperience(_ context.Context, profileID int64, exp *model.Experience) (int64, error) {
	p := f.findByProfileID(profileID)
	if p == nil {
		return 0, repository.ErrProfileNotFound
	}
	f.nextEntryID++
	exp.ID = f.nextEntryID
	p.Experience = append([]model.Experience{*exp}, p.Experience...)
	return exp.ID, nil
}

func (f *fakeProfileStore) DeleteExperience(_ context.Context, profileID, expID int64) error {
	p := f.findByProfileID(profileID)
	if p == nil {
		return nil
	}
	kept := p.Experience[:0]
	for _, e := range p.Experience {
		if e.ID != expID {
			kept = append(kept, e)
		}
	}
	p.Experience = kept
	return nil
}

func (f *fakeProfileStore) AddEducation(_ context.Context, profileID int64, edu *model.Education) (int64, error) {
	p := f.findByProfileID(profileID)
	if p == nil {
		return 0, repository.ErrProfileNotFound
	}
	f.nextEntryID++
	edu.ID = f.nextEntryID
	p.Education = append([]model.Education{*edu}, p.Education...)
	return edu.ID, nil
}

func (f *fakeProfileStore) DeleteEducation(_ context.Context, profileID, eduID int64) error {
	p := f.findByProfileID(profileID)
	if p == nil {
		return nil
	}
	kept := p.Education[:0]
	for _, e := range p.Education {
		if e.ID != eduID {
			kept = append(kept, e)
		}
	}
	p.Education = kept
	return nil
}

func (f *fakeProfileStore) findByProfileID(profileID int64) *model.Profile {
	for _, p := range f.byUser {
		if p.ID == profileID {
			return p
		}
	}
	return nil
}

func copyProfile(p *model.Profile) *model.Profile {
	out := *p
	out.Skills = append([]string(nil), p.Skills...)
	out.Experience = append([]model.Experience(nil), p.Experience...)
	out.Education = append([]model.Education(nil), p.Education...)
	return &out
}

type fakePostStore struct {
	posts  map[int64]*model.Post
	nextID int64
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[int64]*model.Post)}
}

func (f *fakePostStore) Create(_ context.Context, post *model.Post) error {
	f.nextID++
	post.ID = f.nextID
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostStore) GetByID(_ context.Context, id int64) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	return copyPost(p), nil
}

func (f *fakePostStore) List(_ context.Context) ([]model.Post, error) {
	out := make([]model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *copyPost(p))
	}
	return out, nil
}

func (f *fakePostStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostStore) DeleteByUser(_ context.Context, userID int64) error {
	for id, p := range f.posts {
		if p.UserID == userID {
			delete(f.posts, id)
		}
	}
	return nil
}

func (f *fakePostStore) Like(_ context.Context, postID, userID int64) error {
	p, ok := f.posts[postID]
	if !ok {
		return repository.ErrPostNotFound
	}
	for _, l := range p.Likes {
		if l.UserID == userID {
			return repository.ErrAlreadyLiked
		}
	}
	p.Likes = append(p.Likes, model.Like{UserID: userID})
	return nil
}

func (f *fakePostStore) Unlike(_ context.Context, postID, userID int64) error {
	p, ok := f.posts[postID]
	if !ok {
		return repository.ErrPostNotFound
	}
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotLiked
}

func (f *fakePostStore) AddComment(_ context.Context, postID int64, c *model.Comment) error {
	p, ok := f.posts[postID]
	if !ok {
		return repository.ErrPostNotFound
	}
	f.nextID++
	c.ID = f.nextID
	p.Comments = append([]model.Comment{*c}, p.Comments...)
	return nil
}

func (f *fakePostStore) GetComment(_ context.Context, postID, commentID int64) (*model.Comment, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	for _, c := range p.Comments {
		if c.ID == commentID {
			stored := c
			return &stored, nil
		}
	}
	return nil, repository.ErrCommentNotFound
}

func (f *fakePostStore) DeleteComment(_ context.Context, postID, commentID int64) error {
	p, ok := f.posts[postID]
	if !ok {
		return repository.ErrPostNotFound
	}
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return repository.ErrCommentNotFound
}

func copyPost(p *model.Post) *model.Post {
	out := *p
	out.Likes = append([]model.Like(nil), p.Likes...)
	out.Comments = append([]model.Comment(nil), p.Comments...)
	return &out
}
