package accounting_test

import (
	"os"
	"testing"

	"accounting-backend/internal/storage/storagetest"
)

func TestMain(m *testing.M) {
	os.Exit(storagetest.Main(m))
}
