package mocks

import (
	"testing"

	resname "github.com/stackb/resname/pkg/resname"
	mock "github.com/stretchr/testify/mock"
)

// ResourceIDCapturer records the names looked up in a mock index.
type ResourceIDCapturer struct {
	Index *ResourceIndex
	Got   []resname.Name
}

func (c *ResourceIDCapturer) capture(name resname.Name) bool {
	c.Got = append(c.Got, name)
	return true
}

// NewResourceIDCapturer returns a capturer whose index answers every lookup
// with the given id and ok flag.
func NewResourceIDCapturer(t *testing.T, id int, ok bool) *ResourceIDCapturer {
	c := &ResourceIDCapturer{
		Index: NewResourceIndex(t),
	}

	c.Index.
		On("ResourceID", mock.MatchedBy(c.capture)).
		Maybe().
		Return(id, ok)

	return c
}
