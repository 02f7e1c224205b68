package allocation

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// Documentation examples are tested: a ```bash block running alloc followed
// by a ```console block holding its exact output.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

var testableCommand = regexp.MustCompile("(?m)```bash\\n(alloc.*?)\\n```\\n\\n```console\\n((.|\\n)*?)```")

// buildAlloc builds the alloc command and returns the path to the executable.
func buildAlloc(t *testing.T, tmp string) string {
	t.Helper()
	output := filepath.Join(tmp, "alloc")
	buildCmd := exec.Command("go", "build", "-o", output, "./alloc/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build alloc command: %v\n%s", err, out)
	}
	return output
}

// parseTestableCommands extracts commands and their expected outputs from file.
func parseTestableCommands(t *testing.T, file string) []Command {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	var commands []Command
	for _, match := range testableCommand.FindAllStringSubmatch(string(content), -1) {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}
	return commands
}

func TestDocumentation(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the alloc command")
	}
	files, err := filepath.Glob("docs/*.md")
	if err != nil {
		t.Fatal(err)
	}

	tmp := t.TempDir()
	allocPath := buildAlloc(t, tmp)

	for _, file := range files {
		commands := parseTestableCommands(t, file)
		if len(commands) == 0 {
			continue
		}
		t.Run(file, func(t *testing.T) {
			for _, cmd := range commands {
				args := strings.Fields(cmd.Cmd)
				t.Log("Running command:", allocPath, args)
				command := exec.Command(allocPath, args[1:]...)
				// an empty directory: no settings file, no .env.
				command.Dir = t.TempDir()
				output, err := command.CombinedOutput()
				if err != nil {
					t.Fatalf("failed to run command: %v, output: \n%s", err, output)
				}
				if got := string(output); cmd.Expected != got {
					t.Errorf("%s: expected output:\n%q\nbut got:\n%q", cmd.Cmd, cmd.Expected, got)
				}
			}
		})
	}
}
