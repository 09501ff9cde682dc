// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

// MeridianGoClientVersion is the version of the Meridian Go client library.
const MeridianGoClientVersion = "1.2.0"
