package ids

import (
	"fmt"
	"github.com/dchest/uniuri"
	"sync"
	"time"
)

const uniqueIdRandomPartLen = 12

var (
	lastOrderedMutex sync.Mutex
	lastOrdered      int64
)

// generate a random, url safe, unique id
func GenerateUniqueId() string {
	return uniuri.NewLen(uniqueIdRandomPartLen)
}

// generate a unique id whose lexical order follows the given time. Ids generated by this process are strictly
// increasing even when the clock doesn't advance between calls
func GenerateTimeOrderedId(t time.Time) string {
	lastOrderedMutex.Lock()
	nanos := t.UTC().UnixNano()
	if nanos <= lastOrdered {
		nanos = lastOrdered + 1
	}
	lastOrdered = nanos
	lastOrderedMutex.Unlock()
	return fmt.Sprintf("%020d-%s", nanos, uniuri.NewLen(uniqueIdRandomPartLen))
}
