package cmds

import (
	"onair/internal/app/page"

	"github.com/spf13/cobra"
)

var (
	stationID      string
	programsOutput string
)

func NewProgramsCLI() *cobra.Command {
	programsCmd := &cobra.Command{
		Use:   "programs",
		Short: "获取指定电台的节目单，并生成列表的HTML片段。",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderView(cmd, page.EventStation, stationID, programsOutput)
		},
	}

	programsCmd.Flags().StringVarP(&stationID, "station", "s", "", "电台ID。")
	programsCmd.Flags().StringVarP(&programsOutput, "output", "o", "", "HTML片段的输出文件，为空时输出到控制台。")
	_ = programsCmd.MarkFlagRequired("station")

	return programsCmd
}
