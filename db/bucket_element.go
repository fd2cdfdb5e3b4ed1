package db

import "time"

// an element stored in a bucket under its key
type IBucketElement interface {
	Key() []byte
	Bucket() []byte
	// called when the element is first put in the DB
	MarkInsert(user string)
	// called when the element replaces an existing one with the same key
	MarkUpdate(user string)
}

// clock of the audit fields
var now = func() time.Time {
	return time.Now().UTC()
}

// audit fields of stored elements. Elements embed it to implement MarkInsert and MarkUpdate
type ABucketElement struct {
	CreatedBy string    `json:"created_by"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedOn time.Time `json:"updated_on"`
}

func (e *ABucketElement) MarkInsert(user string) {
	e.CreatedBy, e.CreatedOn = user, now()
	e.UpdatedBy, e.UpdatedOn = e.CreatedBy, e.CreatedOn
}

func (e *ABucketElement) MarkUpdate(user string) {
	e.UpdatedBy, e.UpdatedOn = user, now()
}
