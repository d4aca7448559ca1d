// Copyright (c) 2025 RouteHub Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

// Package version carries the build metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/routehubproject/routehub-core/pkg/version.PackageVersion=$(git describe --tags)"
package version

var (
	// PackageVersion is the git tag of the build
	PackageVersion = "NoBuildInfo"
	// PackageCommitID is the git commit of the build
	PackageCommitID = "NoBuildInfo"
	// GitStatus reports whether the working tree was dirty at build time
	GitStatus = "NoBuildInfo"
	// GoVersion is the toolchain the binary was built with
	GoVersion = "NoBuildInfo"
	// BuildTime is the timestamp of the build
	BuildTime = "NoBuildInfo"
)
