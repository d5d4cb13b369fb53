/*
Package docseg splits natural-language text into words, sentences and
paragraphs.

Unlike the boundary rules of Unicode Standard Annex #29, the segmentation here
is driven by the conventions of written prose: abbreviations and acronyms,
ellipses, initials, list bullets, hyphenated words wrapped across lines,
headers and table of contents entries. Text is processed as a slice of Unicode
code points and all positions are code point indices.

# Overview

Using this package, you can:
  - Tokenize text into words along with their sentence and paragraph indices
  - Log the punctuation between words
  - Decide whether a given punctuation mark ends a sentence
  - Classify sentences and paragraphs as complete, incomplete, headers or list items

# Getting Started

For simple use cases:
  - [SegmentString] - Segment a whole text into a [Document]
  - [WordsInString] - List the words of a text
  - [SentencesInString] - List the sentences of a text

For iteration:
  - [Tokenizer] - Read words one at a time with [Tokenizer.Next]

For individual decisions:
  - [Oracle] - Sentence boundaries
  - [IsAbbreviation], [IsAcronym] - Word shapes
  - [IsBulleted], [IsIndented], [EndOfLineRun] - Line shapes
  - [Characters], [Punctuation] - Character classes

# Words

A word starts with a letter or a digit, or with a symbol such as "#", "$" or
"+" directly followed by one. It may contain apostrophes, hyphens and infix
punctuation ("3.14", "1,000", "and/or", "e.g."). A word hyphenated across a
line break ("pump-\nkin") or across a single space ("pro- gramming") is
returned as one word with [Word.SplitWord] set. Periods closing an
abbreviation or a dotted acronym are part of the word.

# Sentences

A sentence ends where the [Oracle] accepts a terminator (".", "!", "?", an
ellipsis, or a colon or dash at the end of a line) or where a paragraph ends.
Sentences ended by a terminator are valid; others are not.

# Paragraphs

A new paragraph starts after a sentence that ends at a line break, after a
blank line, before an indented line and before a list item. [Config] turns
these rules on and off.

# Abbreviations

The built-in abbreviation list covers English and German. It is generated from
data/abbreviations.txt; use [AbbreviationTable.Add] and
[AbbreviationTable.AddNonAbbreviations] to adjust it at run time.
*/
package docseg

//go:generate go run gen_abbreviations.go
