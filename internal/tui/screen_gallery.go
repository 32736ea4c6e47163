package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case imagesLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.images = msg.images
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.toMenu()
		case key.Matches(msg, keys.refresh):
			return m, m.loadImagesCmd()
		}
	}

	return m, nil
}

func (m appModel) viewGallery() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Gallery"))
	b.WriteString("\n\n")

	if len(m.images) == 0 {
		b.WriteString(helpStyle.Render("no photos uploaded") + "\n")
	}
	for _, img := range m.images {
		b.WriteString("  " + img.FileName + "  " + helpStyle.Render(img.URL) + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("r: refresh · esc: back"))
	return appStyle.Render(b.String())
}
