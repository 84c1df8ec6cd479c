package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hieple7985/hip-key/pkg/vietnamese"
)

func init() {
	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert raw keystrokes to Vietnamese",
		Long: "Convert raw Telex or VNI keystrokes to Vietnamese text. " +
			"Each argument is converted as one word. With no arguments, reads " +
			"lines interactively until 'q' or EOF.",
		Run: runConvert,
	}

	RootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	method := inputMethod(cfg)

	if len(args) > 0 {
		words := make([]string, len(args))
		for i, arg := range args {
			words[i] = vietnamese.Convert(arg, method)
		}
		fmt.Println(strings.Join(words, " "))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			break
		}
		fmt.Printf("→ %s\n", convertLine(line, method))
		fmt.Print("> ")
	}
}

// convertLine converts each whitespace-separated word independently.
func convertLine(line string, method vietnamese.InputMethod) string {
	fields := strings.Fields(line)
	for i, f := range fields {
		fields[i] = vietnamese.Convert(f, method)
	}
	return strings.Join(fields, " ")
}
