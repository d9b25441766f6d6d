package extract

// menuPrompt instructs the model to return the extraction batch as bare
// JSON. The schema mirrors menu.ExtractionResult.
const menuPrompt = `Analyze this restaurant menu photo and extract its content as JSON with this exact shape:

{
  "restaurantName": "restaurant name if visible",
  "categories": [
    {
      "categoryName": "section heading",
      "items": [
        {
          "name": "dish name",
          "price": "integer string, e.g. 50000",
          "description": "optional description"
        }
      ]
    }
  ]
}

Rules:
1. Return ONLY bare JSON. No markdown fences, no explanations, no extra text.
2. If a price is missing, use "0".
3. If an item has no description, omit the "description" field.
4. Keep the menu's own language. When an item is printed in both Vietnamese and English, prefer English.
5. Read the whole menu carefully and do not skip any item.
6. When one item lists two prices, emit two items named "<name> (size 1)" and "<name> (size 2)"; without size information, append the price to the name instead.
7. Prices are integer strings like 50000. When a menu abbreviates (120 for 120000), append the missing zeros.

Analyze the photo and return the JSON.`
