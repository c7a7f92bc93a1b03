// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gofirmata is a container for the Firmata serial-protocol driver.
//
// See the firmata subpackage for the driver itself.
package gofirmata
