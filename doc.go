// SPDX-License-Identifier: MIT

// Package tmethods solves balanced transportation problems: ship goods from
// suppliers to consumers at minimum total cost.
//
// 🚀 What is inside?
//
//	A northwest-corner initializer and the method of potentials (MODI),
//	wrapped in a small toolchain:
//		• Initial plan: northwest-corner rule
//		• Dual check: supplier/consumer potentials and reduced costs
//		• Improvement: stepping-stone pivots over a spanning-tree basis
//		• Ingestion: COSTS/SUPPLY/DEMAND text files, YAML and JSON
//		• CLI: tmethods initial | optimal, with config, logs and metrics
//
// Packages:
//
//	modi/              solver: NorthwestCorner, potentials, IsOptimal, SelectPivot, Solve
//	instance/          Instance type, text and YAML decoders, Load
//	internal/config/   viper + validator settings (file, TMETHODS_* env, flags)
//	internal/logging/  slog handler with lumberjack rotation and a logr bridge
//	internal/metrics/  Prometheus registry written as a node-exporter textfile
//	cmd/tmethods/      cobra command line
//
// Quick example:
//
//	       D1  D2
//	  S1 [  4   6 ]  20
//	  S2 [  8   4 ]  30
//	       25  25
//
//	northwest corner → [[20 0] [5 25]], cost 220, already optimal.
//
//	go install github.com/MEGORD/t-methods-calculator/cmd/tmethods@latest
package tmethods
