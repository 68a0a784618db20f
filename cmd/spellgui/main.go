package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"unsafe"

	webview "github.com/webview/webview_go"
)

var (
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	procCreateMutex  = kernel32.NewProc("CreateMutexW")
	procGetLastError = kernel32.NewProc("GetLastError")
)

const (
	serverAddr = "localhost:1923"
	mutexName  = "Global\\SpellGUI_Session"
)

func main() {
	handle, running := acquireSingleInstance()
	if running {
		return
	}
	defer func() {
		_ = syscall.CloseHandle(syscall.Handle(handle))
	}()

	// Webview requires the main thread.
	runtime.LockOSThread()

	// Run from the executable directory so configs/ and data/ resolve.
	if exe, err := os.Executable(); err == nil {
		_ = os.Chdir(filepath.Dir(exe))
	}

	if err := runShell(); err != nil {
		fmt.Fprintln(os.Stderr, "spellgui:", err)
		os.Exit(1)
	}
}

// acquireSingleInstance claims the named Windows mutex. running is true
// when another shell already holds it.
func acquireSingleInstance() (uintptr, bool) {
	ptrName, _ := syscall.UTF16PtrFromString(mutexName)
	handle, _, _ := procCreateMutex.Call(0, 0, uintptr(unsafe.Pointer(ptrName)))
	errCode, _, _ := procGetLastError.Call()
	return handle, errCode == 183 // ERROR_ALREADY_EXISTS
}

func runShell() error {
	w := webview.New(true)
	defer w.Destroy()

	w.Init(`window.addEventListener('contextmenu', e => e.preventDefault(), true);`)
	w.SetTitle("SpellGo")
	w.SetSize(560, 720, webview.HintNone)

	mgr := NewManager(
		func(msg string) {
			w.Dispatch(func() { w.Eval("window.addLogLine(" + escapeJS(msg) + ")") })
		},
		func(url string) {
			w.Dispatch(func() { w.Eval("window.enableApp(" + escapeJS(url) + ")") })
		},
		serverAddr,
	)
	defer mgr.Stop()

	// The loader page is served from a local listener, file:// URLs
	// trip the webview's security checks.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("loader listener: %w", err)
	}
	defer ln.Close()
	go func() {
		_ = http.Serve(ln, http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
			rw.Header().Set("Content-Type", "text/html")
			_, _ = rw.Write([]byte(htmlContent))
		}))
	}()

	w.Navigate("http://" + ln.Addr().String())
	mgr.Start()
	w.Run()
	return nil
}

func escapeJS(s string) string {
	// json.Marshal returns the string quoted and escaped.
	b, _ := json.Marshal(s)
	return string(b)
}
