package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionshrimp/gitlad/internal/core/diff"
)

func TestSession_AddAndAll(t *testing.T) {
	s := NewSession()
	s.Add(PendingComment{Path: "a.go", Line: 5, Side: diff.SideRight, Body: "one"})
	s.Add(PendingComment{Path: "b.go", Line: 2, Side: diff.SideLeft, Body: "two"})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "one", all[0].Body)
	assert.Equal(t, "two", all[1].Body)
}

func TestSession_ForPath(t *testing.T) {
	s := NewSession()
	s.Add(PendingComment{Path: "a.go", Line: 5, Side: diff.SideRight})
	s.Add(PendingComment{Path: "b.go", Line: 2, Side: diff.SideRight})
	s.Add(PendingComment{Path: "a.go", Line: 9, Side: diff.SideRight})

	got := s.ForPath("a.go")
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Line)
	assert.Equal(t, 9, got[1].Line)
}

func TestSession_Discard(t *testing.T) {
	s := NewSession()
	s.Add(PendingComment{Path: "a.go", Line: 5, Side: diff.SideRight})

	assert.False(t, s.Discard("a.go", 5, diff.SideLeft))
	assert.True(t, s.Discard("a.go", 5, diff.SideRight))
	assert.False(t, s.Discard("a.go", 5, diff.SideRight))
	assert.Empty(t, s.All())
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.Add(PendingComment{Path: "a.go", Line: 5, Side: diff.SideRight})
	s.Clear()
	assert.Empty(t, s.All())
}

func TestSession_AllReturnsCopy(t *testing.T) {
	s := NewSession()
	s.Add(PendingComment{Path: "a.go", Line: 5, Side: diff.SideRight, Body: "orig"})

	all := s.All()
	all[0].Body = "mutated"

	assert.Equal(t, "orig", s.All()[0].Body)
}
