package segment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nroutes/pkg/cache"
	"github.com/dmitrymomot/i18nroutes/pkg/segment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		segment string
		want    []segment.Token
	}{
		{
			name:    "empty segment",
			segment: "",
			want:    nil,
		},
		{
			name:    "static",
			segment: "about",
			want:    []segment.Token{{Kind: segment.Static, Value: "about"}},
		},
		{
			name:    "dynamic",
			segment: "[id]",
			want:    []segment.Token{{Kind: segment.Dynamic, Value: "id"}},
		},
		{
			name:    "optional",
			segment: "[[id]]",
			want:    []segment.Token{{Kind: segment.Optional, Value: "id"}},
		},
		{
			name:    "catch-all",
			segment: "[...slug]",
			want:    []segment.Token{{Kind: segment.CatchAll, Value: "slug"}},
		},
		{
			name:    "group",
			segment: "(admin)",
			want:    []segment.Token{{Kind: segment.Group, Value: "admin"}},
		},
		{
			name:    "mixed static and dynamic",
			segment: "post-[id].json",
			want: []segment.Token{
				{Kind: segment.Static, Value: "post-"},
				{Kind: segment.Dynamic, Value: "id"},
				{Kind: segment.Static, Value: ".json"},
			},
		},
		{
			name:    "adjacent params",
			segment: "[lang][id]",
			want: []segment.Token{
				{Kind: segment.Dynamic, Value: "lang"},
				{Kind: segment.Dynamic, Value: "id"},
			},
		},
		{
			name:    "invalid param characters are dropped",
			segment: "[my-id]",
			want:    []segment.Token{{Kind: segment.Dynamic, Value: "myid"}},
		},
		{
			name:    "nested path",
			segment: "blog/[slug]",
			want: []segment.Token{
				{Kind: segment.Static, Value: "blog/"},
				{Kind: segment.Dynamic, Value: "slug"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := segment.Parse(tt.segment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		segment string
		err     error
	}{
		{segment: "[id", err: segment.ErrUnterminatedParam},
		{segment: "[[id]", err: segment.ErrUnterminatedParam},
		{segment: "[...slug", err: segment.ErrUnterminatedParam},
		{segment: "(group", err: segment.ErrUnterminatedParam},
		{segment: "[]", err: segment.ErrEmptyParam},
		{segment: "[...]", err: segment.ErrEmptyParam},
		{segment: "()", err: segment.ErrEmptyGroup},
		{segment: "about-[]", err: segment.ErrEmptyParam},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			t.Parallel()

			_, err := segment.Parse(tt.segment)
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), tt.segment)
		})
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		segment string
		want    string
	}{
		{segment: "", want: "/"},
		{segment: "about", want: "/about"},
		{segment: "[id]", want: "/:id()"},
		{segment: "[[id]]", want: "/:id?"},
		{segment: "[...slug]", want: "/:slug(.*)*"},
		{segment: "(admin)", want: "/"},
		{segment: "post-[id].json", want: "/post-:id().json"},
		{segment: "a b", want: "/a%20b"},
		{segment: "a+b,c;d", want: "/a%2Bb,c;d"},
		{segment: "q?x#y&z", want: "/q%3Fx%23y%26z"},
		{segment: "café", want: "/caf%C3%A9"},
		{segment: "a%2fb", want: "/a%2Fb"},
		{segment: "time:now", want: `/time\:now`},
		{segment: "blog/[slug]", want: "/blog/:slug()"},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			t.Parallel()

			tokens, err := segment.Parse(tt.segment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, segment.Path(tokens))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	got, err := segment.Resolve("/a-propos")
	require.NoError(t, err)
	assert.Equal(t, "/a-propos", got)

	got, err = segment.Resolve("/blog/[slug]")
	require.NoError(t, err)
	assert.Equal(t, "/blog/:slug()", got)

	_, err = segment.Resolve("/blog/[slug")
	require.ErrorIs(t, err, segment.ErrUnterminatedParam)
}

func TestResolver(t *testing.T) {
	t.Parallel()

	store := cache.NewMemory[string](cache.WithCleanupInterval(0))
	defer store.Close()

	r := segment.NewResolver(store)
	ctx := context.Background()

	got, err := r.Resolve(ctx, "/users/[[id]]")
	require.NoError(t, err)
	assert.Equal(t, "/users/:id?", got)

	cached, err := store.Get(ctx, "/users/[[id]]")
	require.NoError(t, err)
	assert.Equal(t, "/users/:id?", cached)

	_, err = r.Resolve(ctx, "/users/[]")
	require.ErrorIs(t, err, segment.ErrEmptyParam)
}
