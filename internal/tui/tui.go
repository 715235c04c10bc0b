package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// TUI is the terminal front end of the client.
type TUI struct {
	services  *service.ClientServices
	account   common.Address
	chainID   uint64
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New creates the terminal UI for the wallet account on chainID.
func New(services *service.ClientServices, account common.Address, chainID uint64, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil client services")
	}

	return &TUI{
		services:  services,
		account:   account,
		chainID:   chainID,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the sign in page and then the gallery until the user quits or
// ctx is cancelled. It returns ErrUserQuit when the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageLogin, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Debug().Msg("terminal UI closed")
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageLogin:   newLoginModel(ctx, t.services.AuthService, t.account, t.chainID),
		pageGallery: newGalleryModel(ctx, t.services.GalleryService, t.account),
		pageSubmit:  newSubmitModel(ctx, t.services.SubmissionService),
		pageDetail:  newDetailModel(ctx, t.services.InterpretationService, t.account),
	}
}
