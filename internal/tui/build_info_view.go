// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-aura/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application: Aura\nVersion: %s\nBuild date: %s\nCommit: %s",
		info.Version(), info.Date(), info.Commit())

	return renderPage("ABOUT", body, "esc: back")
}
