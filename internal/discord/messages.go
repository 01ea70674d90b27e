package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Coins!**\nYou don't have enough coins for this transaction."

	// Items & Inventory
	MsgItemNotFound   = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgNotEnoughItems = "🎒 **Not Enough Items**\nYou don't have enough of that item."

	// Shop & Marketplace
	MsgNotInShop       = "🏪 **Not For Sale**\nThe shop doesn't carry that item."
	MsgOutOfStock      = "📦 **Out of Stock**\nCheck back after the next restock."
	MsgListingNotFound = "📜 **Listing Not Found**\nIt may have already been bought or cancelled."

	// Dungeons & Stamina
	MsgInsufficientStamina = "⚡ **Not Enough Stamina!**\nRest a while, it regenerates on its own."
	MsgDungeonActive       = "🗺️ **Already Exploring**\nFinish your current dungeon run first."
	MsgNoActiveDungeon     = "🛏️ **No Active Dungeon**\nCommit some stamina with `/dungeon commit` to start one."

	// Player
	MsgPlayerNotFound = "👤 **Player Not Found**\nHave they registered yet?"

	MsgGenericError = "❌ Something went wrong."
)
