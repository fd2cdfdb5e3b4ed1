package activity

import (
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"testing"
)

func TestList(t *testing.T) {
	cleanup := db.InitDbForTest()
	defer cleanup()
	var elements []db.IBucketElement
	var created []*Entry
	for i := 0; i < 5; i++ {
		entry := NewEntry("osnat", "instructorCourseDetails", "/page", fmt.Sprintf("message %d", i))
		created = append(created, entry)
		elements = append(elements, entry)
	}
	if err := db.Update(db.System, elements...); err != nil {
		t.Fatal(err)
	}
	entries, more, err := List("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !more || len(entries) != 2 || entries[0].ID != created[0].ID || entries[1].ID != created[1].ID {
		t.Fatalf("unexpected first page: more=%v entries=%+v", more, entries)
	}
	entries, more, err = List(entries[1].ID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if more || len(entries) != 3 || entries[2].Message != "message 4" {
		t.Fatalf("unexpected second page: more=%v entries=%+v", more, entries)
	}
	entries, more, err = List("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if more || len(entries) != 5 {
		t.Fatalf("expected all 5 entries without a limit but got %d", len(entries))
	}
}

func TestListAfterId(t *testing.T) {
	cleanup := db.InitDbForTest()
	defer cleanup()
	var elements []db.IBucketElement
	for _, id := range []string{"0001", "0002", "0003"} {
		elements = append(elements, &Entry{ID: id, Message: id})
	}
	if err := db.Update(db.System, elements...); err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		afterId  string
		expected string
	}{
		{"0001", "[0002 0003]"},
		{"00015", "[0002 0003]"},
		{"0003", "[]"},
		{"9999", "[]"},
	}
	for _, testCase := range testCases {
		t.Run(fmt.Sprintf("after %s", testCase.afterId), func(t *testing.T) {
			entries, more, err := List(testCase.afterId, 0)
			if err != nil {
				t.Fatal(err)
			}
			ids := make([]string, 0, len(entries))
			for _, entry := range entries {
				ids = append(ids, entry.ID)
			}
			if more || fmt.Sprint(ids) != testCase.expected {
				t.Fatalf("expected %s but got %v (more: %v)", testCase.expected, ids, more)
			}
		})
	}
}
