package seed

import (
	"context"
	"math/rand"
	"testing"

	"devmart-be/internal/order"
	"devmart-be/internal/post"
	"devmart-be/internal/tech"
	"devmart-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes so the batch job can run against no real store.

type fakeUserRepo struct {
	wiped bool
	users map[primitive.ObjectID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	u.ID = primitive.NewObjectID()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, params user.UpdateParams) (*user.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) PushPost(ctx context.Context, userID, postID primitive.ObjectID) (*user.User, error) {
	u := f.users[userID]
	u.Posts = append(u.Posts, postID)
	return u, nil
}

func (f *fakeUserRepo) PullPost(ctx context.Context, userID, postID primitive.ObjectID) (*user.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepo) PushOrder(ctx context.Context, userID primitive.ObjectID, o order.Order) error {
	return nil
}

func (f *fakeUserRepo) DeleteAll(ctx context.Context) error {
	f.wiped = true
	f.users = map[primitive.ObjectID]*user.User{}
	return nil
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakePostRepo struct {
	wiped bool
	posts map[primitive.ObjectID]*post.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[primitive.ObjectID]*post.Post{}}
}

func (f *fakePostRepo) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	p.ID = primitive.NewObjectID()
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*post.Post, error) {
	return f.posts[id], nil
}

func (f *fakePostRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]post.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) FindAll(ctx context.Context) ([]post.Post, error) { return nil, nil }

func (f *fakePostRepo) PushTech(ctx context.Context, postID, techID primitive.ObjectID) (*post.Post, error) {
	p := f.posts[postID]
	p.Tech = append(p.Tech, techID)
	return p, nil
}

func (f *fakePostRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error { return nil }

func (f *fakePostRepo) DeleteAll(ctx context.Context) error {
	f.wiped = true
	f.posts = map[primitive.ObjectID]*post.Post{}
	return nil
}

type fakeTechRepo struct {
	wiped bool
	techs map[string]*tech.Tech
}

func newFakeTechRepo() *fakeTechRepo {
	return &fakeTechRepo{techs: map[string]*tech.Tech{}}
}

func (f *fakeTechRepo) GetOrCreate(ctx context.Context, name string) (*tech.Tech, error) {
	if t, ok := f.techs[name]; ok {
		return t, nil
	}
	t := &tech.Tech{ID: primitive.NewObjectID(), Name: name}
	f.techs[name] = t
	return t, nil
}

func (f *fakeTechRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*tech.Tech, error) {
	return nil, nil
}

func (f *fakeTechRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]tech.Tech, error) {
	return nil, nil
}

func (f *fakeTechRepo) FindAll(ctx context.Context) ([]tech.Tech, error) { return nil, nil }

func (f *fakeTechRepo) PushPost(ctx context.Context, techID, postID primitive.ObjectID) error {
	for _, t := range f.techs {
		if t.ID == techID {
			t.Posts = append(t.Posts, postID)
		}
	}
	return nil
}

func (f *fakeTechRepo) DeleteAll(ctx context.Context) error {
	f.wiped = true
	f.techs = map[string]*tech.Tech{}
	return nil
}

func TestDefaultData(t *testing.T) {
	data, err := DefaultData()
	require.NoError(t, err)
	assert.NotEmpty(t, data.Users)
	assert.NotEmpty(t, data.Posts)
	assert.NotEmpty(t, data.Techs)
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	data, err := DefaultData()
	require.NoError(t, err)

	users := newFakeUserRepo()
	posts := newFakePostRepo()
	techs := newFakeTechRepo()

	rng := rand.New(rand.NewSource(42))

	err = Run(ctx, users, posts, techs, data, rng)
	require.NoError(t, err)

	assert.True(t, users.wiped)
	assert.True(t, posts.wiped)
	assert.True(t, techs.wiped)

	assert.Len(t, users.users, len(data.Users))
	assert.Len(t, posts.posts, len(data.Posts))
	assert.Len(t, techs.techs, len(data.Techs))

	// Every post is linked to exactly one tech and the tech references it
	// back.
	for id, p := range posts.posts {
		require.Len(t, p.Tech, 1, "post %s", id.Hex())

		var back bool
		for _, tc := range techs.techs {
			if tc.ID == p.Tech[0] {
				for _, ref := range tc.Posts {
					if ref == id {
						back = true
					}
				}
			}
		}
		assert.True(t, back, "tech must reference post %s back", id.Hex())
	}

	// Every post belongs to exactly one user.
	owned := map[primitive.ObjectID]int{}
	for _, u := range users.users {
		for _, pid := range u.Posts {
			owned[pid]++
		}
	}
	assert.Len(t, owned, len(data.Posts))
	for pid, n := range owned {
		assert.Equal(t, 1, n, "post %s owned once", pid.Hex())
	}

	// Passwords are stored hashed.
	for _, u := range users.users {
		assert.NotEqual(t, "password12345", u.Password)
	}
}

func TestRun_PostsWithoutLinkTargets(t *testing.T) {
	ctx := context.Background()

	data := Data{
		Posts: []PostSeed{{Title: "orphan", Body: "no one to own this"}},
	}

	err := Run(ctx, newFakeUserRepo(), newFakePostRepo(), newFakeTechRepo(), data, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot link posts")
}

func TestRun_Deterministic(t *testing.T) {
	ctx := context.Background()
	data, err := DefaultData()
	require.NoError(t, err)

	pairing := func(seed int64) []string {
		users := newFakeUserRepo()
		posts := newFakePostRepo()
		techs := newFakeTechRepo()
		require.NoError(t, Run(ctx, users, posts, techs, data, rand.New(rand.NewSource(seed))))

		var out []string
		for _, p := range posts.posts {
			for _, tc := range techs.techs {
				if tc.ID == p.Tech[0] {
					out = append(out, p.Title+"->"+tc.Name)
				}
			}
		}
		return out
	}

	first := pairing(7)
	second := pairing(7)
	assert.ElementsMatch(t, first, second)
}
