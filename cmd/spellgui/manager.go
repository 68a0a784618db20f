package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// Manager supervises the backend process for the webview shell. It either
// launches spellgo.exe and streams its output into the loader pane, or
// adopts a backend that is already listening.
type Manager struct {
	logFunc    func(string)
	appFunc    func(string)
	backend    *exec.Cmd
	serverAddr string
}

func NewManager(log, app func(string), serverAddr string) *Manager {
	return &Manager{logFunc: log, appFunc: app, serverAddr: serverAddr}
}

// Start brings the backend up and flips the webview to the quiz once
// /api/version answers. Runs in the background, the webview loop must
// keep the main thread.
func (m *Manager) Start() {
	go func() {
		if m.ping() {
			m.log("> Backend already active.")
		} else {
			m.log("> Starting spellgo.exe...")
			go m.launchBackend()
		}

		m.log("> Waiting for backend...")
		deadline := time.Now().Add(30 * time.Second)
		for time.Now().Before(deadline) {
			if m.ping() {
				m.log("> Backend ready!")
				m.appFunc("http://" + m.serverAddr)
				return
			}
			time.Sleep(time.Second)
		}
		m.log("> Error: backend did not come up in time.")
	}()
}

// Stop asks the backend to shut down gracefully. A backend this shell
// merely adopted is left running.
func (m *Manager) Stop() {
	if m.backend == nil || m.backend.Process == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	url := fmt.Sprintf("http://%s/api/shutdown", m.resolveAddr())
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, http.NoBody)
	resp, err := (&http.Client{Timeout: 2 * time.Second}).Do(req)
	if err != nil {
		m.log(fmt.Sprintf("> Shutdown request failed: %v", err))
		return
	}
	resp.Body.Close()
	// Give the backend a moment to flush logs and release the port.
	time.Sleep(500 * time.Millisecond)
}

func (m *Manager) launchBackend() {
	cmd := exec.Command("./spellgo.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}

	stdout, _ := cmd.StdoutPipe()
	stderr, _ := cmd.StderrPipe()
	if err := cmd.Start(); err != nil {
		m.log(fmt.Sprintf("> Failed to start backend: %v", err))
		return
	}
	m.backend = cmd

	go m.forward(stdout)
	go m.forward(stderr)

	if err := cmd.Wait(); err != nil {
		m.log(fmt.Sprintf("> Backend exited with error: %v", err))
	}
}

// forward copies backend output lines into the loader pane.
func (m *Manager) forward(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m.log(scanner.Text())
	}
}

func (m *Manager) ping() bool {
	client := http.Client{Timeout: time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/api/version", m.serverAddr))
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// resolveAddr rewrites loopback names to 127.0.0.1 so the shutdown POST
// does not depend on name resolution.
func (m *Manager) resolveAddr() string {
	addr := m.serverAddr
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	if strings.HasPrefix(addr, "localhost:") {
		return strings.Replace(addr, "localhost:", "127.0.0.1:", 1)
	}
	return addr
}

func (m *Manager) log(msg string) {
	if m.logFunc != nil {
		m.logFunc(msg)
	}
}
