// Package knowledgebase answers search queries locally by asking a text
// generator for a structured description of matching health-checkup
// packages and parsing the answer back into domain packages.
//
// The generator is prompted to answer in a fixed line format:
//
//	Hospital Name: <hospital>
//	Package Name: <package>
//	Price: <price in INR>
//	Description: <text>
//	Features:
//	- <feature>
//
// ParseAnswer tolerates partial and free-form answers; see its doc comment.
package knowledgebase
