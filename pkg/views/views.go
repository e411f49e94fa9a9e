// Package views provides the workspace view lifecycle contract consumed by
// hook handlers. Rendering and session partitioning live in the desktop
// shell; this package only carries the calls the engine sequences.
package views

import "github.com/lerenn/workdeck/pkg/logger"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=views.go -destination=mocks/views.gen.go -package=mocks

// CreateViewParams contains parameters for CreateView.
type CreateViewParams struct {
	// WorkspaceID identifies the workspace the view renders.
	WorkspaceID string
	// URL is the workspace URL loaded into the view.
	URL string
}

// Service interface provides workspace view lifecycle operations.
type Service interface {
	// CreateView opens a view for a workspace.
	CreateView(params CreateViewParams) error
	// CloseView closes the view of a workspace.
	CloseView(workspaceID string) error
	// FocusView brings the view of a workspace to the front.
	FocusView(workspaceID string) error
	// SetWindowTitle updates the application window title.
	SetWindowTitle(title string) error
}

// headlessService is the default implementation used when no desktop shell
// is attached; it records the calls in the log and succeeds.
type headlessService struct {
	logger logger.Logger
}

// NewHeadlessService creates a view service that only logs.
func NewHeadlessService(log logger.Logger) Service {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &headlessService{logger: log}
}

// CreateView opens a view for a workspace.
func (s *headlessService) CreateView(params CreateViewParams) error {
	s.logger.Logf("view: create %s -> %s", params.WorkspaceID, params.URL)
	return nil
}

// CloseView closes the view of a workspace.
func (s *headlessService) CloseView(workspaceID string) error {
	s.logger.Logf("view: close %s", workspaceID)
	return nil
}

// FocusView brings the view of a workspace to the front.
func (s *headlessService) FocusView(workspaceID string) error {
	s.logger.Logf("view: focus %s", workspaceID)
	return nil
}

// SetWindowTitle updates the application window title.
func (s *headlessService) SetWindowTitle(title string) error {
	s.logger.Logf("view: title %q", title)
	return nil
}
