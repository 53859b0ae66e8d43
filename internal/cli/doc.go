// Package cli is the interactive terminal front end of sparekeeper.
//
// App reads commands from a line-oriented REPL and forwards them to an
// api.Bridge. Results are rendered as lipgloss tables; failures are printed
// with the message the Bridge reports.
//
// Commands available once logged in:
//
//	parts [text] [status=S] [cat=ID] [sort=F] [order=asc|desc] [page=N] [limit=N]
//	part ID | addpart | editpart ID | delpart ID
//	cats | addcat | editcat ID | delcat ID
//	users | role ID ROLE | deluser ID
//	stats | activity [page]
//	import PATH | export [DEST]
//	whoami | logout | exit
package cli
