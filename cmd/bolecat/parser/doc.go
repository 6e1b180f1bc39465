// Package parser provides streaming parsing of bole-formatted log lines.
//
// The Parser type reads an input source line by line and recognizes the
// output shapes the library's formatters emit: an optional timestamp, an
// optional bracketed channel tag, a severity name, an optional file:line
// token, and the message after a "-" separator. Lines that match none of
// these shapes are passed through raw, so downstream consumers can behave
// like cat.
package parser
