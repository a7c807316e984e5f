package cmds

import (
	"errors"
	"io/fs"
	"onair/internal/app/config"
	"onair/internal/pkg/logging"
	"onair/internal/pkg/util"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// configEnv 未指定--config时读取的环境变量
const configEnv = "ONAIR_CONFIG"

var (
	cfgFile string

	conf *config.Config
)

func init() {
	cobra.OnInitialize(initConfig)
}

func NewRootCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "onair",
		Short:         "电视/电台节目单工具",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewServeCLI())
	rootCmd.AddCommand(NewStationsCLI())
	rootCmd.AddCommand(NewProgramsCLI())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML配置文件的路径")

	return rootCmd
}

// initConfig 初始化配置文件和日志
func initConfig() {
	// 加载当前目录中的.env文件
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		cobra.CheckErr(err)
	}

	fPath, err := configPath()
	cobra.CheckErr(err)

	// 读取配置文件
	conf, err = config.Load(fPath)
	cobra.CheckErr(err)

	// 初始化日志
	cobra.CheckErr(logging.InitLogger(conf.Log))
}

// configPath 按命令参数、环境变量、程序所在目录的顺序查找配置文件
func configPath() (string, error) {
	if cfgFile != "" {
		// 使用命令参数中的配置文件
		return cfgFile, nil
	}
	if fPath := os.Getenv(configEnv); fPath != "" {
		return fPath, nil
	}

	cfgHome, err := util.GetCurrentAbPathByExecutable()
	if err != nil {
		return "", err
	}
	fPath := filepath.Join(cfgHome, "config.yml")

	// 写入缺省配置文件
	if _, err = os.Stat(fPath); os.IsNotExist(err) {
		if err = config.CreateDefaultCfg(fPath); err != nil {
			return "", err
		}
	}
	return fPath, nil
}
