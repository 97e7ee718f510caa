package chat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/edi-cli/edi/pkg/config"
)

// Models lists the Poe bots selectable at first-run setup.
var Models = []string{
	"Assistant",
	"Web-Search",
	"Claude-Opus-4.1",
	"Claude-Sonnet-4",
	"GPT-5",
	"GPT-5-Chat",
	"GPT-5-mini",
	"Gemini-2.5-Pro",
	"Grok-4",
}

// apiKeyLength is the length of a Poe API key.
const apiKeyLength = 43

// Setup interactively collects the API key and model choice for a first
// run. It must only be called when stdin is a terminal, since the masked
// key prompt reads the terminal directly.
func Setup(in io.Reader, out io.Writer) (config.Config, error) {
	key, err := promptAPIKey(out)
	if err != nil {
		return config.Config{}, err
	}

	model := promptModel(bufio.NewReader(in), out)

	return config.Config{APIKey: key, Model: model}, nil
}

// promptAPIKey reads the key with terminal echo disabled, retrying until
// the input has the expected length.
func promptAPIKey(out io.Writer) (string, error) {
	for {
		fmt.Fprintln(out, "Enter your Poe API key.")
		fmt.Fprintln(out, "No characters will be displayed as you type.")
		fmt.Fprintln(out, "Press Enter when done.")

		key, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("read API key: %w", err)
		}
		fmt.Fprintln(out)

		if len(key) == apiKeyLength {
			return string(key), nil
		}
		fmt.Fprintf(out, "Invalid API key length. Expected %d characters.\n", apiKeyLength)
	}
}

// promptModel shows the numbered model menu. An unparseable or
// out-of-range choice falls back to the first entry.
func promptModel(in *bufio.Reader, out io.Writer) string {
	fmt.Fprintln(out, "Available models:")
	for i, model := range Models {
		fmt.Fprintf(out, "%s %s\n", menuStyle.Render(strconv.Itoa(i+1)+":"), model)
	}
	fmt.Fprint(out, "Select a model by number: ")

	line, _ := in.ReadString('\n')
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(Models) {
		fmt.Fprintf(out, "Invalid choice, defaulting to %s.\n", Models[0])
		return Models[0]
	}

	return Models[choice-1]
}
