// Package reader runs fetch cycles: one random title request followed by the
// article content request, formatted into an ArticleView. Only the most
// recently started cycle reports updates; older cycles are cancelled and
// their results dropped.
package reader
