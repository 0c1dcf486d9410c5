//go:build windows

// Package win32 wraps the minimal user32/gdi32 surface the window
// backend needs: window creation, a message pump, and the SetPixelV
// and FillRect GDI calls.
package win32

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procFillRect         = user32.NewProc("FillRect")
	procGetDC            = user32.NewProc("GetDC")
	procGetMessageW      = user32.NewProc("GetMessageW")
	procLoadCursorW      = user32.NewProc("LoadCursorW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procReleaseDC        = user32.NewProc("ReleaseDC")
	procTranslateMessage = user32.NewProc("TranslateMessage")

	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
	procDeleteObject     = gdi32.NewProc("DeleteObject")
	procSetPixelV        = gdi32.NewProc("SetPixelV")
)

const (
	wsOverlappedWindow = 0x00CF0000
	wsVisible          = 0x10000000
	cwUseDefault       = 0x80000000
	wmDestroy          = 0x0002
	idcArrow           = 32512
	colorWindow        = 5
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type rect struct {
	Left, Top, Right, Bottom int32
}

const className = "PixWindow"

var classRegistered bool

func wndProc(hwnd, message, wParam, lParam uintptr) uintptr {
	if message == wmDestroy {
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, message, wParam, lParam)
	return ret
}

// Window owns a native window and the device context draw calls go
// through. All methods must run on the goroutine that created the
// window; CreateWindow pins that goroutine to its OS thread.
type Window struct {
	hwnd      uintptr
	hdc       uintptr
	destroyed bool
}

// CreateWindow registers the window class on first use and creates a
// visible overlapped window with the given title and client size.
func CreateWindow(title string, width, height int) (*Window, error) {
	// The message loop and the DC are bound to the creating thread.
	runtime.LockOSThread()

	classNamePtr, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, fmt.Errorf("win32: class name: %w", err)
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, fmt.Errorf("win32: title: %w", err)
	}

	if !classRegistered {
		cursor, _, _ := procLoadCursorW.Call(0, uintptr(idcArrow))
		class := wndClassEx{
			WndProc:    windows.NewCallback(wndProc),
			Cursor:     windows.Handle(cursor),
			Background: windows.Handle(colorWindow + 1),
			ClassName:  classNamePtr,
		}
		class.Size = uint32(unsafe.Sizeof(class))
		if atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&class))); atom == 0 {
			return nil, fmt.Errorf("win32: RegisterClassEx: %v", callErr)
		}
		classRegistered = true
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(classNamePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		wsOverlappedWindow|wsVisible,
		uintptr(cwUseDefault),
		uintptr(cwUseDefault),
		uintptr(width),
		uintptr(height),
		0, 0, 0, 0,
	)
	if hwnd == 0 {
		return nil, fmt.Errorf("win32: CreateWindowEx: %v", callErr)
	}

	hdc, _, callErr := procGetDC.Call(hwnd)
	if hdc == 0 {
		procDestroyWindow.Call(hwnd)
		return nil, fmt.Errorf("win32: GetDC: %v", callErr)
	}

	return &Window{hwnd: hwnd, hdc: hdc}, nil
}

// SetPixel colors one pixel in the client area.
func (w *Window) SetPixel(x, y int, c uint32) {
	procSetPixelV.Call(w.hdc, uintptr(x), uintptr(y), uintptr(c))
}

// FillRect fills a block in the client area with a solid color.
func (w *Window) FillRect(x, y, width, height int, c uint32) {
	brush, _, _ := procCreateSolidBrush.Call(uintptr(c))
	if brush == 0 {
		return
	}
	r := rect{
		Left:   int32(x),
		Top:    int32(y),
		Right:  int32(x + width),
		Bottom: int32(y + height),
	}
	procFillRect.Call(w.hdc, uintptr(unsafe.Pointer(&r)), brush)
	procDeleteObject.Call(brush)
}

// MessageLoop pumps window messages until WM_QUIT. It blocks the
// calling goroutine for the lifetime of the window.
func (w *Window) MessageLoop() {
	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Destroy releases the device context and destroys the window.
// Idempotent.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true
	procReleaseDC.Call(w.hwnd, w.hdc)
	if ret, _, callErr := procDestroyWindow.Call(w.hwnd); ret == 0 {
		return fmt.Errorf("win32: DestroyWindow: %v", callErr)
	}
	return nil
}
