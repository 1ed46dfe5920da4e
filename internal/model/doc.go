package model

// Package model defines domain data structures used across the app: map and
// mappack records, the ordinal tables shared between query building and
// response decoding, and download task status enums. Structures are designed
// for direct binding in the UI.
