package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewIdentity_Uses_StudentID_As_ID(t *testing.T) {
	req := require.New(t)

	identity := NewIdentity("1234567", "1234567@iub.edu.bd", "A B")

	req.Equal("1234567", identity.ID)
	req.Equal(identity.ID, identity.StudentID)
}

func Test_Sender_Variants(t *testing.T) {
	req := require.New(t)
	identity := NewIdentity("1234567", "1234567@iub.edu.bd", "A B")

	known := KnownSender(identity)
	guest := GuestSender("Bob")

	req.True(known.IsKnown())
	req.Equal("A B", known.DisplayName())
	got, ok := known.Identity()
	req.True(ok)
	req.Equal(identity, got)

	req.False(guest.IsKnown())
	req.Equal("Bob", guest.DisplayName())
	_, ok = guest.Identity()
	req.False(ok)
}

func Test_ResolveDefaultCourse(t *testing.T) {
	req := require.New(t)

	_, ok := ResolveDefaultCourse(nil)
	req.False(ok)

	course, ok := ResolveDefaultCourse([]Course{{ID: "cse101"}, {ID: "bus201"}})
	req.True(ok)
	req.Equal(CourseID("cse101"), course.ID)
}
