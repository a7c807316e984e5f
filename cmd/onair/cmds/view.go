package cmds

import (
	"onair/internal/app/page"
	"onair/internal/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// renderView 触发一次页面事件，并将替换后的列表内容写入输出
func renderView(cmd *cobra.Command, event page.Event, elementID, output string) error {
	// L()：获取全局logger
	logger := zap.L()

	p, _, err := page.NewFromConfig(conf)
	if err != nil {
		return err
	}

	view := &page.Buffer{}
	err = p.Hooks.Trigger(cmd.Context(), event, page.ViewContext{
		Session:   "cli",
		ElementID: elementID,
	}, view)
	if err != nil {
		return err
	}

	// 将结果写入文件
	if err = util.WriteOutput(cmd.OutOrStdout(), output, string(view.HTML)+"\n"); err != nil {
		logger.Error("Failed to write the output.", zap.Error(err))
		return err
	}

	if output != "" {
		logger.Info("The list has been written to the file.", zap.String("event", string(event)), zap.String("list", view.ListID), zap.String("file", output))
	}
	return nil
}
