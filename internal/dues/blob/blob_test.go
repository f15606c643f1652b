package blob

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestPutOpenRoundtrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.Put("receipt.png", []byte("image bytes")))

	r, err := s.Open("receipt.png")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("image bytes"), data)
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	_, err := s.Open("nope.pdf")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.Put("a.pdf", []byte("x")))
	require.NoError(t, s.Delete("a.pdf"))
	require.NoError(t, s.Delete("a.pdf"))

	_, err := s.Open("a.pdf")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListSkipsTempFiles(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	require.NoError(t, s.Put("one.jpg", []byte("1")))
	require.NoError(t, s.Put("two.jpg", []byte("2")))

	names, err := s.List()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"one.jpg", "two.jpg"}, names)
}

func TestRejectsTraversalNames(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	for _, bad := range []string{"", "../escape", "a/b.png", ".hidden"} {
		require.ErrorIs(t, s.Put(bad, []byte("x")), ErrInvalidName, "name %q", bad)
	}
}
