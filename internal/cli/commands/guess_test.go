package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestGuessCommand(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "python",
			code: "def f():\n    if x is None:\n        raise ValueError\n",
			want: "python",
		},
		{
			name: "go",
			code: "func main() {\n\tch := make(chan int)\n\tdefer close(ch)\n\tgo func() { ch <- 1 }()\n}\n",
			want: "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewGuessCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetIn(strings.NewReader(tt.code))
			cmd.SetArgs(nil)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("guess = %q, want %q", got, tt.want)
			}
		})
	}
}
