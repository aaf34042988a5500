// Copyright 2026 The reviewmd Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package format renders review comments as a markdown document.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/reviewmd/reviewmd/internal/review"
)

// Markdown renders the comments of one pull request as a markdown document.
// Comments are rendered in the order given; callers sort beforehand.
func Markdown(comments []review.Comment, owner, repo string, number int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# PR #%d Review Comments\n\n", number)
	fmt.Fprintf(&b, "**Repository:** %s/%s\n\n", owner, repo)

	if len(comments) == 0 {
		b.WriteString("No review comments found.\n")
		return b.String()
	}

	for i, c := range comments {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		writeComment(&b, c)
	}

	return b.String()
}

func writeComment(b *strings.Builder, c review.Comment) {
	fmt.Fprintf(b, "## %s\n\n", location(c))

	author := c.User.Login
	if author == "" {
		author = "(deleted user)"
	}
	fmt.Fprintf(b, "**%s** commented on %s (%s)\n\n",
		author, c.CreatedAt.UTC().Format("2006-01-02 15:04 UTC"), c.Side)

	if c.DiffHunk != "" {
		fmt.Fprintf(b, "```diff\n%s\n```\n\n", strings.TrimRight(c.DiffHunk, "\n"))
	}

	body := strings.TrimSpace(c.Body)
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	if c.HTMLURL != "" {
		fmt.Fprintf(b, "[View on GitHub](%s)\n\n", c.HTMLURL)
	}
}

// location formats the file anchor as path:line, falling back to the bare
// path when the line is unknown (outdated comments).
func location(c review.Comment) string {
	if c.Line != nil {
		return fmt.Sprintf("%s:%d", c.Path, *c.Line)
	}
	return c.Path
}

// Filename generates the default output file name for a fetched PR:
// {owner}-{repo}-{timestamp}-pr{number}.md.
func Filename(owner, repo string, number int, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s-pr%d.md", owner, repo, now.Format("20060102-150405"), number)
}
