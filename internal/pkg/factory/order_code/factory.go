package order_code

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const codePrefix = "ORD"

type OrderCodeFactory struct{}

func New() *OrderCodeFactory {
	return &OrderCodeFactory{}
}

// NewOrderCode builds a human-readable code with a random suffix,
// for example ORD-20260901-8F3A2C1D. Uniqueness is enforced by the
// database constraint on order_code.
func (f *OrderCodeFactory) NewOrderCode() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("%s-%s-%s", codePrefix, time.Now().UTC().Format("20060102"), suffix)
}
