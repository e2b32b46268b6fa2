// Package extract turns uploaded review files into a flat list of review
// texts. CSV, XLSX/XLS, TXT, HTML, and JSON inputs are supported; tabular
// formats locate the review column by common header names (including Russian
// aliases) and fall back to the first column. Byte content is decoded with an
// encoding fallback chain (UTF-8, Windows-1251, Windows-1252, Latin-1) since
// exported review files frequently arrive in legacy encodings.
package extract
