package logging

import (
	"os"
	"path"
	"testing"
)

func TestExitHandlerClosesLogFile(t *testing.T) {
	f, err := os.Create(path.Join(t.TempDir(), "quikrand.log"))
	if err != nil {
		t.Fatal(err)
	}
	logFile = f
	exitHandler()
	if closeErr := f.Close(); closeErr == nil {
		t.Fatal("log file was not closed by the exit handler")
	}
	logFile = nil
	exitHandler()
}
