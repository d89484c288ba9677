package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_defaultInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-00042", defaultInvoiceNumber("ORD-00042"))
	assert.Equal(t, "INV-X1", defaultInvoiceNumber("X1"))
}
