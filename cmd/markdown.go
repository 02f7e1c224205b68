package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal, or prints it raw when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
