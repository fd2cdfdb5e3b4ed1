package activity

import (
	"encoding/json"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/util/ids"
	"time"
)

// an entry of the admin activity log, describing a single action performed by a user
type Entry struct {
	db.ABucketElement
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	UserName string    `json:"user_name"`
	Action   string    `json:"action"`
	Path     string    `json:"path"`
	Message  string    `json:"message"`
}

func (e *Entry) Key() []byte {
	return []byte(e.ID)
}

func (e *Entry) Bucket() []byte {
	return []byte(db.Activity)
}

// create a new entry (no update in db). Entry ids sort by creation time
func NewEntry(userName, action, path, message string) *Entry {
	now := time.Now().UTC()
	return &Entry{
		ID:       ids.GenerateTimeOrderedId(now),
		Time:     now,
		UserName: userName,
		Action:   action,
		Path:     path,
		Message:  message,
	}
}

// return up to limit entries, oldest first, starting after the entry with the given id (or from the first entry when
// afterId is empty). The returned boolean is true if there are more entries after the returned ones
func List(afterId string, limit int) ([]*Entry, bool, error) {
	var start []byte
	if afterId != "" {
		// the lowest key greater than afterId
		start = append([]byte(afterId), 0)
	}
	var entries []*Entry
	err := db.QueryBucketFrom([]byte(db.Activity), start, func(_, elementBytes []byte) error {
		entry := &Entry{}
		if err := json.Unmarshal(elementBytes, entry); err != nil {
			return err
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) == limit {
			return &db.ErrStopQuery{}
		}
		return nil
	})
	if err != nil {
		if _, ok := err.(*db.ErrElementsLeftToProcess); ok {
			return entries, true, nil
		}
		return nil, false, err
	}
	return entries, false, nil
}
