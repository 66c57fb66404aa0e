package quote

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var idCounter uint64

// NewInvoiceID produces a unique invoice identifier of the form
// INV-<TOKEN>-<unix-millis>. The token is five characters of UUID entropy;
// when the entropy source fails the clock plus a process-wide counter keep
// ids unique, so generation itself never errors.
func NewInvoiceID() string {
	now := time.Now().UnixMilli()
	u, err := uuid.NewRandom()
	if err != nil {
		n := atomic.AddUint64(&idCounter, 1)
		return fmt.Sprintf("INV-%05d-%d", n%100000, now)
	}
	token := strings.ToUpper(strings.ReplaceAll(u.String(), "-", ""))[:5]
	return fmt.Sprintf("INV-%s-%d", token, now)
}
