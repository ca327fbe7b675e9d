package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNamespace(t *testing.T, prefix string) (*Namespace, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewNamespace(NewRedisStore(client), prefix), mr
}

func TestNamespace_KeysArePrefixedAndCaseInsensitive(t *testing.T) {
	ns, mr := newTestNamespace(t, "MENU_")
	ctx := context.Background()

	ns.SetJSON(ctx, "get_menu/?name=Burger-Bar", []string{"burgers"}, TTLDefault)

	assert.True(t, mr.Exists("menu_get_menu/?name=burger-bar"))

	var got []string
	require.True(t, ns.GetJSON(ctx, "GET_MENU/?name=BURGER-BAR", &got))
	assert.Equal(t, []string{"burgers"}, got)
}

func TestNamespace_TTLExpiry(t *testing.T) {
	ns, mr := newTestNamespace(t, "restaurants_")
	ctx := context.Background()

	ns.SetJSON(ctx, "prepop", []string{"Durban"}, TTLDefault)
	mr.FastForward(TTLDefault + time.Second)

	var got []string
	assert.False(t, ns.GetJSON(ctx, "prepop", &got))
}

func TestNamespace_Delete(t *testing.T) {
	ns, mr := newTestNamespace(t, "option_categories_")
	ctx := context.Background()

	ns.SetJSON(ctx, "a", 1, TTLDefault)
	ns.SetJSON(ctx, "b", 2, TTLDefault)
	ns.Delete(ctx, "A", "b")

	assert.False(t, mr.Exists("option_categories_a"))
	assert.False(t, mr.Exists("option_categories_b"))
}

func TestNamespace_UnavailableStoreIsAMiss(t *testing.T) {
	ns, mr := newTestNamespace(t, "menu_")
	ctx := context.Background()
	mr.Close()

	var got int
	assert.False(t, ns.GetJSON(ctx, "anything", &got))
	assert.NotPanics(t, func() { ns.SetJSON(ctx, "anything", 1, TTLDefault) })
}

func TestFetch(t *testing.T) {
	ns, _ := newTestNamespace(t, "menu_")
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	first, err := Fetch(ctx, ns, "answer", TTLDefault, load)
	require.NoError(t, err)
	second, err := Fetch(ctx, ns, "answer", TTLDefault, load)
	require.NoError(t, err)

	assert.Equal(t, 42, first)
	assert.Equal(t, 42, second)
	assert.Equal(t, 1, calls)
}

func TestFetch_FallsThroughWhenStoreDown(t *testing.T) {
	ns, mr := newTestNamespace(t, "menu_")
	mr.Close()

	calls := 0
	value, err := Fetch(context.Background(), ns, "answer", TTLDefault, func(context.Context) (string, error) {
		calls++
		return "from-db", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "from-db", value)
	assert.Equal(t, 1, calls)
}

func TestFetch_LoadErrorIsNotCached(t *testing.T) {
	ns, mr := newTestNamespace(t, "menu_")
	ctx := context.Background()

	_, err := Fetch(ctx, ns, "broken", TTLDefault, func(context.Context) (int, error) {
		return 0, errors.New("db down")
	})

	assert.EqualError(t, err, "db down")
	assert.False(t, mr.Exists("menu_broken"))
}

func TestRefreshOverwrites(t *testing.T) {
	ns, _ := newTestNamespace(t, "menu_")
	ctx := context.Background()

	ns.SetJSON(ctx, "price", "10.00", TTLDefault)
	_, err := Refresh(ctx, ns, "price", TTLDefault, func(context.Context) (string, error) {
		return "12.50", nil
	})
	require.NoError(t, err)

	var got string
	require.True(t, ns.GetJSON(ctx, "price", &got))
	assert.Equal(t, "12.50", got)
}

func TestNilNamespaceIsSafe(t *testing.T) {
	var ns *Namespace
	var got int
	assert.False(t, ns.GetJSON(context.Background(), "k", &got))
	assert.NotPanics(t, func() {
		ns.SetJSON(context.Background(), "k", 1, TTLDefault)
		ns.Delete(context.Background(), "k")
	})
}
