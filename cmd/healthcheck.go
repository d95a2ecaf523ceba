package cmd

import (
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// healthcheckCommand ヘルスチェックコマンド
func healthcheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Run healthcheck",
		Run: func(_ *cobra.Command, _ []string) {
			logger := getCLILogger()
			defer logger.Sync()

			url, err := pingURL(c.Addr)
			if err != nil {
				logger.Fatal("invalid addr", zap.String("addr", c.Addr), zap.Error(err))
			}
			resp, err := http.DefaultClient.Get(url)
			if err != nil {
				logger.Fatal("HTTP Client Error", zap.Error(err))
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				logger.Fatal("Unexpected status", zap.Int("status", resp.StatusCode))
			}
		},
	}
}

// pingURL 待ち受けアドレスからヘルスチェック先のURLを返します
func pingURL(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", err
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return fmt.Sprintf("http://%s/api/ping", net.JoinHostPort(host, port)), nil
}
