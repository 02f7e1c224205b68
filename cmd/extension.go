package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvReturnsFile  = "ALLOC_RETURNS_FILE"
	EnvCurrency     = "ALLOC_CURRENCY"
	EnvSettingsFile = "ALLOC_SETTINGS_FILE"
	EnvVerbose      = "ALLOC_VERBOSE"
	EnvAddr         = "ALLOC_ADDR"
)

// ExtensionPrefix prefixes the name of external subcommands.
const ExtensionPrefix = "alloc-"

// extensionEnv returns the environment variables passing the global flags
// to an extension.
func extensionEnv() []string {
	return []string{
		EnvReturnsFile + "=" + *returnsFile,
		EnvCurrency + "=" + *currencyFlag,
		EnvSettingsFile + "=" + *settingsFile,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}

// RunExtension attempts to find and execute an external alloc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}
