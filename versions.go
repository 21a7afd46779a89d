// Copyright (C) 2025 Media.net
//
// This file is part of ads-cert-openrtb3-verifier.
//
// ads-cert-openrtb3-verifier is free software: you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// ads-cert-openrtb3-verifier is distributed in the hope that it will be
// useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ads-cert-openrtb3-verifier.  If not, see
// <https://www.gnu.org/licenses/>.

// Package adscert provides version information for the ads.cert verifier
// library.
package adscert

const (
	// Version is the current version of ads-cert-openrtb3-verifier
	Version = "1.0.0"

	// AdsCertSpecVersion is the ads.cert digest and signature convention
	// revision this library verifies against
	AdsCertSpecVersion = "1.0"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion     string
	AdsCertSpecVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:     Version,
		AdsCertSpecVersion: AdsCertSpecVersion,
	}
}
