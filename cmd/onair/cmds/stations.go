package cmds

import (
	"onair/internal/app/page"

	"github.com/spf13/cobra"
)

var stationsOutput string

func NewStationsCLI() *cobra.Command {
	stationsCmd := &cobra.Command{
		Use:   "stations",
		Short: "获取电台列表，并生成列表的HTML片段。",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderView(cmd, page.EventAllStations, "", stationsOutput)
		},
	}

	stationsCmd.Flags().StringVarP(&stationsOutput, "output", "o", "", "HTML片段的输出文件，为空时输出到控制台。")

	return stationsCmd
}
