package matchinfo

// Template strings for rendered match info. Kept in one place so league
// admins only have to touch this file when wording changes.
const (
	headerTmpl = "__Match Day %s: %s__\n"
	versusTmpl = "**%s**\n    versus\n**%s**\n\n"

	lobbyInfoTmpl = "Name: **%s**\nPassword: **%s**"

	streamInfoTmpl = "Your match is scheduled to be played **on stream** as the %s team.\n" +
		"Time slot: **%s**\nStart time: **%s**\nLive stream: %s\n\n"
	homeInfo = "You are the **home** team. Create the lobby using the name and password above " +
		"and invite the away team once your roster is ready.\n\n"
	awayInfo = "You are the **away** team. Join the lobby once the home team has it set up.\n\n"
	regularInfo = "Save your replays and report the series result after your match. Good luck!"

	soloHomeInfoTmpl = "You are the home team's **%d** seed. Create the lobbies below and " +
		"invite your opponent at the start of each series."
	soloAwayInfoTmpl = "You are the away team's **%d** seed. Join your opponent's lobby at " +
		"the start of each series."
	soloHomeMatchTmpl = "\nThe %s series is against **%s** and begins at %s."
	soloAwayMatchTmpl = "The %s series is against **%s** and begins at %s.\n" +
		"Lobby name: **%s**\nPassword: **%s**"
	soloMatchupTmpl = "%s vs %s"

	soloGridHeaderTmpl = "\n\nThe %s series will begin at %s and will include the following matchups: "

	firstMatchDescr  = "first **one game**"
	secondMatchDescr = "second **one game**"
	thirdMatchDescr  = "final **three game**"

	firstMatchTime  = "10:00 PM ET"
	secondMatchTime = "10:20 PM ET"
	thirdMatchTime  = "10:40 PM ET"

	matchupsErrorText = "There was an error getting the matchups for this match."
)
