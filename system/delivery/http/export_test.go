package http

var ExtractVersion = extractVersion
