package cmds

import (
	"fmt"
	"onair/internal/app/router"

	"github.com/spf13/cobra"
)

var port int

func NewServeCLI() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务，提供移动端页面及电台、节目单查询接口。",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 创建并启动HTTP服务
			r, err := router.NewEngine(cmd.Context(), conf)
			if err != nil {
				return err
			}
			if err = r.Run(fmt.Sprintf(":%d", port)); err != nil {
				return err
			}

			return nil
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP服务的监听端口。")

	return serveCmd
}
