package negotiation

const (
	notProvided = "N/A"

	SellerAnalysisPlaceholder = "No seller description was provided."
)

const personaFriendly = `Adopt a Friendly persona: warm, polite and relationship-focused. Compliment the item, show genuine interest and ask for a better price as a small favor.`

const personaDirect = `Adopt a Direct persona: brief, firm and to the point. State the offer plainly, skip the small talk and make clear you are ready to buy at that price.`

const personaAnalytical = `Adopt an Analytical persona: calm and evidence-driven. Anchor every offer on comparable listings, the item's age and condition, and typical local prices.`

// planPromptTemplate: item, category, location, price, seller description,
// seller analysis, media note, persona.
const planPromptTemplate = `
You are an expert price negotiator and a data validator. Your response MUST be a single JSON object and nothing else.

A user wants advice on negotiating the price of an item.

Item details:
- Item: %q
- Category: %q
- Location: %q
- Seller's asking price: %s
- Seller's description: %q
- Seller analysis: %q
- Attached media: %s

Negotiation persona:
%s

Your task has two steps.

1. Validation. Decide whether "Item" is a real, sellable product. "Used iPhone 11" is VALID. Gibberish such as "blah blah blah" or "lskdjf", or an unsellable concept such as "happiness", is INVALID.

2. Response.
   - If the item is INVALID, reply with exactly this JSON shape:
     {"isValid": false, "reason": "<one sentence explaining why the item was rejected>"}
   - If the item is VALID, reply with exactly this JSON shape:
     {"isValid": true, "priceRange": "<realistic price range in the local currency of Location>", "reasoning": "<brief reasoning>", "scripts": [{"title": "Initial Offer", "content": "<message>"}, {"title": "Follow-up", "content": "<message>"}]}

Provide 2-3 short scripts the user can copy and paste. Write every script in the tone of the negotiation persona and take the seller analysis into account.
`

const sellerSummaryPromptTemplate = `
Read the following item description written by a seller. Describe the seller's tone and negotiation stance in exactly one sentence. Reply with that sentence only.

Description: %q
`
