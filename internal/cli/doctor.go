package cli

import (
	"fmt"
	"os"

	"github.com/inlavigo/ggcreate/internal/doctor"
	"github.com/inlavigo/ggcreate/internal/exec"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that flutter, dart, and git are installed and recent enough",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Tool check:")
		return doctor.Run(cmd.Context(), exec.NewRunner(), os.Stdout)
	},
}
