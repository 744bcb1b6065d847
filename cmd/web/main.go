package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/mousany/dawn-breaker/internal/config"
	"github.com/mousany/dawn-breaker/internal/log"
)

//go:embed index.html
var htmlPage string

func main() {
	tuning, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	host := config.GetEnv("WEB_HOST", tuning.Web.Host)
	port := config.GetEnv("WEB_PORT", tuning.Web.Port)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", tuning.Web.DisplayHost)
	sshPort := config.GetEnv("SSH_PORT", tuning.SSH.Port)

	logger, err := log.New(log.ParseLevel(tuning.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	page := renderPage(sshHost, sshPort)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", log.String("addr", "http://"+addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Error("server error", log.Err(err))
		os.Exit(1)
	}
}

// renderPage fills the connection details into the landing page.
func renderPage(sshHost, sshPort string) string {
	command := "ssh " + sshHost
	if sshPort != "" && sshPort != "22" {
		command = fmt.Sprintf("ssh -p %s %s", sshPort, sshHost)
	}
	return strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.SSHCommand}}", command,
	).Replace(htmlPage)
}
