package sellervibe

const stageSellerVibe = "seller_vibe"

const analyzePromptTemplate = `
You read marketplace listings. Work out the personality and negotiation stance of the seller who wrote this description:
%q

Reply with ONLY one valid JSON object of this exact shape:
{
  "vibe": "short vibe title, for example 'Friendly & Eager', 'Firm but Fair', 'Corporate & Professional' or 'Low-Effort Seller'",
  "key_phrases": ["2-3 phrases quoted from the description that back up the vibe"],
  "strategy_tip": "one sentence on how the buyer should approach this seller",
  "emoji": "one emoji for the vibe, for example '🤝', '🧐', '🔥' or '💼'"
}
`
