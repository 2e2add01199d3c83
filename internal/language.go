package internal

import "sort"

// LanguageInfo describes one supported editor language. All language-specific
// behavior (comment toggling, file naming, default buffer contents) is driven
// by this table so adding a language is a single entry here.
type LanguageInfo struct {
	Name           string
	CommentToken   string
	FileExtension  string
	DefaultSnippet string
}

// languageTable is the closed set of supported languages. HTML and CSS carry
// only the opening half of their block-comment syntax; toggling a comment on
// those lines is not a round trip (known asymmetry, kept from the original
// behavior).
var languageTable = map[string]LanguageInfo{
	"python": {
		Name:           "python",
		CommentToken:   "#",
		FileExtension:  ".py",
		DefaultSnippet: "# Python Workspace\nprint(\"Hello, World!\")\n",
	},
	"javascript": {
		Name:           "javascript",
		CommentToken:   "//",
		FileExtension:  ".js",
		DefaultSnippet: "// JavaScript Workspace\nconsole.log(\"Hello, World!\");\n",
	},
	"html": {
		Name:           "html",
		CommentToken:   "<!--",
		FileExtension:  ".html",
		DefaultSnippet: "<!DOCTYPE html>\n<html>\n<body>\n  <h1>Hello, World!</h1>\n</body>\n</html>\n",
	},
	"css": {
		Name:           "css",
		CommentToken:   "/*",
		FileExtension:  ".css",
		DefaultSnippet: "/* CSS Workspace */\nbody {\n    margin: 0;\n}\n",
	},
	"java": {
		Name:           "java",
		CommentToken:   "//",
		FileExtension:  ".java",
		DefaultSnippet: "public class Main {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}\n",
	},
	"cpp": {
		Name:           "cpp",
		CommentToken:   "//",
		FileExtension:  ".cpp",
		DefaultSnippet: "#include <iostream>\n\nint main() {\n    std::cout << \"Hello, World!\" << std::endl;\n    return 0;\n}\n",
	},
	"sql": {
		Name:           "sql",
		CommentToken:   "--",
		FileExtension:  ".sql",
		DefaultSnippet: "-- SQL Workspace\nSELECT 'Hello, World!';\n",
	},
}

// defaultLanguage is used when no stored preference exists.
const defaultLanguage = "python"

// DefaultLanguage returns the language selected when nothing is stored.
func DefaultLanguage() string {
	return defaultLanguage
}

// LookupLanguage returns the table entry for name. Unknown languages get a
// generic fallback entry so every operation stays total.
func LookupLanguage(name string) LanguageInfo {
	if info, ok := languageTable[name]; ok {
		return info
	}
	return LanguageInfo{
		Name:           name,
		CommentToken:   "//",
		FileExtension:  ".txt",
		DefaultSnippet: "// " + name + " Workspace\n",
	}
}

// IsSupportedLanguage reports whether name is in the closed language set.
func IsSupportedLanguage(name string) bool {
	_, ok := languageTable[name]
	return ok
}

// SupportedLanguages returns all known language names in sorted order.
func SupportedLanguages() []string {
	names := make([]string, 0, len(languageTable))
	for name := range languageTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
