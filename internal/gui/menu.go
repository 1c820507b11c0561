// Menu handler for application actions
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/sirupsen/logrus"

	"image-enhancement-tool/internal/config"
)

// MenuHandler builds the main menu. Every item delegates to the same
// actions as the control panel buttons.
type MenuHandler struct {
	window fyne.Window
	logger *logrus.Logger

	onSave  func()
	onReset func()
	onExit  func()
}

func NewMenuHandler(window fyne.Window, logger *logrus.Logger) *MenuHandler {
	return &MenuHandler{
		window: window,
		logger: logger,
	}
}

func (mh *MenuHandler) SetCallbacks(onSave, onReset, onExit func()) {
	mh.onSave = onSave
	mh.onReset = onReset
	mh.onExit = onExit
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	exit := fyne.NewMenuItem("Exit", mh.call(&mh.onExit, "exit"))
	exit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Image", mh.call(&mh.onSave, "save")),
		fyne.NewMenuItemSeparator(),
		exit,
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Reset", mh.call(&mh.onReset, "reset")),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
}

// call resolves the callback at click time so SetCallbacks may run after
// the menu is built.
func (mh *MenuHandler) call(fn *func(), action string) func() {
	return func() {
		mh.logger.WithField("action", action).Debug("Menu item selected")
		if *fn != nil {
			(*fn)()
		}
	}
}

func (mh *MenuHandler) showAbout() {
	dialog.ShowInformation("About "+config.AppName,
		"Interactive brightness, contrast, blur, sharpening,\n"+
			"equalization, edge detection and colour balance.",
		mh.window)
}
